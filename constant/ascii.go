package constant

// AsciiArtLogo is rendered above the root command help output.
const AsciiArtLogo = `
        _     _                          _
 __   _(_) __| |_ __ ___   __ _ _ __ ___| | __
 \ \ / / |/ _` + "`" + ` | '_ ` + "`" + ` _ \ / _` + "`" + ` | '__/ __| |/ /
  \ V /| | (_| | | | | | | (_| | |  \__ \   <
   \_/ |_|\__,_|_| |_| |_|\__,_|_|  |___/_|\_\
`
