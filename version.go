package moorgen

// Version is the moorgen release version.
var Version = "0.1.0"
