package chat

import "strings"

// ImagePlaceholder replaces raw image paths in contact-list previews.
const ImagePlaceholder = "📷 Photo"

// IsImageReference reports whether content looks like an image path or
// URI rather than displayable text.
func IsImageReference(content string) bool {
	return strings.HasPrefix(content, "drawable://") ||
		strings.Contains(content, "content://") ||
		strings.Contains(content, "file://") ||
		strings.Contains(content, "/storage/")
}

// PreviewLabel returns the text to show for a last-message summary,
// substituting a placeholder for image references.
func PreviewLabel(content string) string {
	if IsImageReference(content) {
		return ImagePlaceholder
	}
	return content
}
