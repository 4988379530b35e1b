// Package library manages the template library: the single directory holding
// the authoritative copy of every template file. It canonicalizes template
// names, enumerates installed templates, copies new templates in and deletes
// them. Library operations never touch project working directories, so an
// uninstall can leave a dangling project link behind.
package library
