// Package cmd implements the command-line interface for vidmark.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidmark-cli/vidmark/color"
	"github.com/vidmark-cli/vidmark/constant"
	"github.com/vidmark-cli/vidmark/filesystem"
	"github.com/vidmark-cli/vidmark/icon"
	"github.com/vidmark-cli/vidmark/key"
	"github.com/vidmark-cli/vidmark/log"
	"github.com/vidmark-cli/vidmark/style"
	"github.com/vidmark-cli/vidmark/timecode"
	"github.com/vidmark-cli/vidmark/tui"
	"github.com/vidmark-cli/vidmark/util"
	"github.com/vidmark-cli/vidmark/version"
	"github.com/vidmark-cli/vidmark/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().StringP("annotations", "a", "", "Path to a JSON annotation sidecar for the media")
	rootCmd.Flags().StringP("title", "t", "", "Override the display title derived from the media path")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the vidmark application.
var rootCmd = &cobra.Command{
	Use:   constant.Vidmark + " [media]",
	Short: "A terminal playback widget with time-indexed annotations",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A terminal playback widget with time-indexed annotations"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		CheckDependencies()

		media := args[0]

		title := lo.Must(cmd.Flags().GetString("title"))
		if title == "" {
			title = util.FileStem(media)
		}

		annotations, err := loadAnnotations(media, lo.Must(cmd.Flags().GetString("annotations")))
		handleErr(err)

		options := tui.Options{
			URL:         media,
			Title:       title,
			Annotations: annotations,
		}
		handleErr(tui.Run(&options))
	},
}

// loadAnnotations resolves the annotation sidecar for a media target. An
// explicit path wins; otherwise autoload probes "<media stem>.annotations.json"
// next to local files. A missing explicit sidecar is an error, a missing
// autoloaded one is not.
func loadAnnotations(media, explicit string) (timecode.List, error) {
	if explicit != "" {
		return timecode.Load(explicit)
	}

	if !viper.GetBool(key.AnnotationsAutoload) {
		return nil, nil
	}

	// Remote targets have no sidecar to probe.
	if strings.Contains(media, "://") {
		return nil, nil
	}

	sidecar := strings.TrimSuffix(media, filepath.Ext(media)) + ".annotations.json"
	exists, err := filesystem.API().Exists(sidecar)
	if err != nil || !exists {
		return nil, nil
	}

	log.Infof("autoloading annotation sidecar %s", sidecar)
	return timecode.Load(sidecar)
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
