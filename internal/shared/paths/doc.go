// Package paths provides operand path resolution for the shell.
//
// Every command argument that names a file is resolved against the
// session's current directory at the moment the command runs. Nothing
// here touches the filesystem.
//
// # Resolution Rules
//
//	Resolve("/home/user", "docs")          // /home/user/docs
//	Resolve("/home/user", "..", "tmp")     // /home/tmp
//	Resolve("/home/user", "/etc", "hosts") // /etc/hosts
//	Resolve("/home/user", "./a//b/.")      // /home/user/a/b
//
// # Navigation
//
//	Parent("/home/user") // /home
//	Parent("/")          // /
package paths
