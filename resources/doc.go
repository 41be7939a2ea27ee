// Package resources contains functions to prepare paths for the resources
// used by the simon program. At the moment this is the window geometry of the
// ebiten front-end and the optional simon.env configuration file.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments. It handles the creation of
// directories as required but does not otherwise touch or create files.
//
// JoinPath() handles the inclusion of the correct base path. The base path
// depends on how the binary was built.
//
// For builds with the "release" build tag, the path returned by JoinPath() is
// rooted in the user's configuration directory. On modern Linux systems the
// full path would be something like:
//
//	/home/user/.config/simon/
//
// For non-"release" builds, the correct path is rooted in the current working
// directory:
//
//	.simon
//
// # portable.txt
//
// An exception to the above rules is when an empty file named 'portable.txt' is
// in the same directory as the program binary. When the file exists the
// resources are saved in a directory named 'Simon_UserData' in the same
// directory as the program binary.
package resources
