package dataset

import "fmt"

// IssueKind discriminates the recoverable problems a run can surface.
type IssueKind int

const (
	// IssueMissingLabel marks an image with no matching label file.
	IssueMissingLabel IssueKind = iota
	// IssueMissingImage marks a label file with no matching image.
	IssueMissingImage
	// IssueUnparsableClassID marks an annotation line whose first token is
	// not an integer.
	IssueUnparsableClassID
	// IssueUnmappedClassID marks a class id outside the remap's domain.
	IssueUnmappedClassID
	// IssueReadFailure marks a label file that could not be read.
	IssueReadFailure
	// IssueWriteFailure marks a label file that could not be rewritten.
	IssueWriteFailure
)

// Issue is one recoverable problem found while scanning or rewriting.
type Issue struct {
	Kind    IssueKind
	Split   string
	Path    string
	Token   string
	ClassID int
	Err     error
}

func (i Issue) String() string {
	switch i.Kind {
	case IssueMissingLabel:
		return fmt.Sprintf("Missing label for image: %s", i.Path)
	case IssueMissingImage:
		return fmt.Sprintf("Missing image for label: %s", i.Path)
	case IssueUnparsableClassID:
		return fmt.Sprintf("Non-integer class id in %s: %q", i.Path, i.Token)
	case IssueUnmappedClassID:
		return fmt.Sprintf("Class id %d not in remap for %s", i.ClassID, i.Path)
	case IssueReadFailure:
		return fmt.Sprintf("Failed reading %s: %v", i.Path, i.Err)
	case IssueWriteFailure:
		return fmt.Sprintf("Failed writing %s: %v", i.Path, i.Err)
	default:
		return fmt.Sprintf("Unknown issue for %s", i.Path)
	}
}
