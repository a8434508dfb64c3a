package scaffold

// Descriptor declares one file to create: a target path plus optional
// content. A nil Content takes the batch default; an explicit empty
// string is honored verbatim and yields an empty file.
type Descriptor struct {
	Path    string
	Content *string
}

// PathOnly builds a descriptor that takes the batch default content.
func PathOnly(path string) Descriptor {
	return Descriptor{Path: path}
}

// PathWithContent builds a descriptor carrying explicit content.
func PathWithContent(path string, content string) Descriptor {
	return Descriptor{Path: path, Content: &content}
}
