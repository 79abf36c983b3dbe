package constant

// AsciiArtLogo is the application's banner shown in the root command help.
const AsciiArtLogo = `
     _                                 _
 ___| |_ ___ _ __ ___  ___  _ __  | | __ _ _   _
/ __| __/ _ \ '__/ _ \/ _ \| '_ \ | |/ _' | | | |
\__ \ ||  __/ | |  __/ (_) | |_) || | (_| | |_| |
|___/\__\___|_|  \___|\___/| .__/ |_|\__,_|\__, |
                           |_|             |___/`
