// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

// Id identifies an entry of the issue catalog.
type Id int

const (
	PathNotFoundId Id = iota + 1
	NoSuchAncestorId
	DirectoryNotListableId
	InvalidPatternId
	ConfigLoadFailedId
)

type (
	// MarkdownMsg is Markdown guidance shown for an issue.
	MarkdownMsg string

	// HttpLink is a documentation URL.
	HttpLink string

	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue for the terminal using a glamour style name
// ("dark", "light", "notty") or style file path.
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	pathNotFoundIssue = &Issue{
		id: PathNotFoundId,
		mdMsg: `
# Path not added

The path does not exist or is not a directory, so the search path was left unchanged.

## Things you can try:
- Check the spelling of the path
- Create the directory first:
~~~
$ mkdir -p path/to/lib
~~~
- Relative paths are resolved against the current directory`,
	}

	noSuchAncestorIssue = &Issue{
		id: NoSuchAncestorId,
		mdMsg: `
# Cannot go up that many levels

The working directory does not have that many parent directories.

## Things you can try:
- Use a smaller level count (1 is the immediate parent)
- Run the command from a deeper directory`,
	}

	directoryNotListableIssue = &Issue{
		id: DirectoryNotListableId,
		mdMsg: `
# Nothing to list

The path does not exist or is not a directory.

## Things you can try:
- Check the spelling of the path
- Pass a directory, not a file`,
	}

	invalidPatternIssue = &Issue{
		id: InvalidPatternId,
		mdMsg: `
# Invalid file pattern

The --pattern value is not a valid glob.

## Supported syntax:
- ` + "`*`" + ` matches any run of characters
- ` + "`?`" + ` matches a single character
- ` + "`[abc]`" + ` and ` + "`{a,b}`" + ` match alternatives`,
		docLinks: []HttpLink{"https://github.com/bmatcuk/doublestar#patterns"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

pathmaster could not read its configuration file.

## Things you can try:
- Check the CUE syntax of your config file
- Print the expected layout:
~~~
$ pathmaster config dump
~~~
- Recreate a default file:
~~~
$ pathmaster config init
~~~`,
	}

	issues = []*Issue{
		pathNotFoundIssue,
		noSuchAncestorIssue,
		directoryNotListableIssue,
		invalidPatternIssue,
		configLoadFailedIssue,
	}
)

// Get returns the catalog entry for id, or nil when there is none.
func Get(id Id) *Issue {
	idx := slices.IndexFunc(issues, func(i *Issue) bool { return i.id == id })
	if idx < 0 {
		return nil
	}
	return issues[idx]
}
