// Package platform provides the "create reference" capability used to
// activate a template in a project. A Linker exposes a file-link and a
// directory-link variant; CreateReference inspects the target at call time and
// picks the matching one. OSLinker creates native symbolic links and tests
// substitute a recording fake.
package platform
