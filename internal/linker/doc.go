// Package linker activates library templates in a project. Adding a template
// places a symbolic link named after it in the project's working directory;
// removing it deletes that link and nothing else. The working directory is an
// explicit parameter of Project, never read from the process.
package linker
