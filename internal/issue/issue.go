// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/invowk/jdesc/pkg/descriptor"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	MalformedDescriptorId Id = iota + 1
	PreconditionViolationId
	UndefinedSizeId
	ConfigLoadFailedId
	InputReadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty for descriptor issues
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

const jvmsDescriptors HttpLink = "https://docs.oracle.com/javase/specs/jvms/se21/html/jvms-4.html#jvms-4.3"

var (
	render = glamour.Render

	malformedDescriptorIssue = &Issue{
		id: MalformedDescriptorId,
		mdMsg: `
# Malformed descriptor!

The input does not follow the descriptor grammar.

## Grammar:
~~~
FieldDescriptor  ::= BaseType | ObjectType | ArrayType
BaseType         ::= B | C | D | F | I | J | S | Z | V
ObjectType       ::= L ClassPath ;
ArrayType        ::= [ FieldDescriptor
MethodDescriptor ::= ( FieldDescriptor* ) ReturnType
~~~

## Common mistakes:
- Forgetting the terminating ';' of a class type (` + "`Ljava/lang/String`" + `)
- Using dots instead of slashes inside a descriptor (` + "`Ljava.lang.String;`" + `)
- A method descriptor without ')' or without a return type
- ` + "`V`" + ` used as a parameter or array component

## Things you can try:
~~~
$ jdesc render 'Ljava/lang/String;'
$ jdesc convert --from class java.lang.String
~~~`,
		docLinks: []HttpLink{jvmsDescriptors},
	}

	preconditionViolationIssue = &Issue{
		id: PreconditionViolationId,
		mdMsg: `
# Operation not defined for this descriptor!

The descriptor is well formed, but the requested operation does not apply
to its kind of type.

## Rules:
- Only array descriptors (` + "`[...`" + `) have a component type
- Only class and interface descriptors (` + "`L...;`" + `) have an internal form and a package
- Class names must be dotted (` + "`java.lang.String`" + `) or a primitive keyword (` + "`int`" + `)

## Things you can try:
~~~
$ jdesc classify '[I'
~~~`,
		docLinks: []HttpLink{jvmsDescriptors},
	}

	undefinedSizeIssue = &Issue{
		id: UndefinedSizeId,
		mdMsg: `
# No stack size for this descriptor!

Stack sizes are defined for single value types only: void takes 0 slots,
long and double take 2, everything else takes 1.

## Things you can try:
- For a method descriptor, compute the parameter slots instead:
~~~
$ jdesc method '(IJ)V'
~~~`,
		docLinks: []HttpLink{jvmsDescriptors},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or does not match the schema.

## Things you can try:
- Show where jdesc looks for its configuration:
~~~
$ jdesc config path
~~~
- Recreate the default file:
~~~
$ jdesc config init
~~~`,
	}

	inputReadFailedIssue = &Issue{
		id: InputReadFailedId,
		mdMsg: `
# Failed to read descriptor input!

The batch input could not be read or exceeds the configured size limit.

## Things you can try:
- Check that the file exists and is readable
- Raise ` + "`batch.max_input_bytes`" + ` in your configuration
- Pipe descriptors through stdin:
~~~
$ printf 'I\n[J\n' | jdesc batch
~~~`,
	}

	issues = map[Id]*Issue{
		malformedDescriptorIssue.Id():   malformedDescriptorIssue,
		preconditionViolationIssue.Id(): preconditionViolationIssue,
		undefinedSizeIssue.Id():         undefinedSizeIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		inputReadFailedIssue.Id():       inputReadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}

// IdFor returns the catalog entry describing a codec error kind.
func IdFor(kind descriptor.ErrorKind) (Id, bool) {
	switch kind {
	case descriptor.KindMalformed:
		return MalformedDescriptorId, true
	case descriptor.KindPrecondition:
		return PreconditionViolationId, true
	case descriptor.KindUndefinedSize:
		return UndefinedSizeId, true
	default:
		return 0, false
	}
}
