package domain

import "strings"

// UnknownExtension is used when no subtype can be read from a content type.
const UnknownExtension = "unknown"

// AllowedExtensions is the fixed download allow-list. Matching is case-sensitive.
var AllowedExtensions = []string{"pdf", "txt", "md", "jpg", "png", "gif", "mp3", "mp4", "wav"}

// ExtensionFromContentType returns the subtype of a MIME content type,
// e.g. "application/pdf" gives "pdf". Parameters such as "; charset=utf-8"
// are dropped. A missing or malformed value gives UnknownExtension.
func ExtensionFromContentType(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	_, subtype, ok := strings.Cut(strings.TrimSpace(mediaType), "/")
	if !ok {
		return UnknownExtension
	}
	subtype = strings.TrimSpace(subtype)
	if subtype == "" {
		return UnknownExtension
	}
	return subtype
}

// extensionAliases maps registered MIME subtypes onto allow-list entries.
// The extension written to disk is still the subtype itself.
var extensionAliases = map[string]string{
	"jpeg": "jpg",
}

// IsAllowedExtension reports whether ext, or the entry it aliases, is on the allow-list.
func IsAllowedExtension(ext string) bool {
	if alias, ok := extensionAliases[ext]; ok {
		ext = alias
	}
	for _, allowed := range AllowedExtensions {
		if allowed == ext {
			return true
		}
	}
	return false
}

// ShouldAccept decides whether a fetched response is persisted.
// Unsafe mode accepts everything.
func ShouldAccept(contentType string, unsafe bool) bool {
	if unsafe {
		return true
	}
	return IsAllowedExtension(ExtensionFromContentType(contentType))
}

// DownloadStatus is the result category of one download.
type DownloadStatus string

const (
	// DownloadAccepted means the content was written to disk.
	DownloadAccepted DownloadStatus = "accepted"

	// DownloadRejected means the download policy skipped the content.
	// This is not an error.
	DownloadRejected DownloadStatus = "rejected"

	// DownloadFailed means the fetch or write failed.
	DownloadFailed DownloadStatus = "failed"
)

// DownloadOutcome records what happened to one result during a batch download.
type DownloadOutcome struct {
	// Index is the position of the result in the batch.
	Index int

	// Result is the search result that was processed.
	Result SearchResult

	Status DownloadStatus

	// Extension is derived from the response content type.
	Extension string

	// Path is where the file was written (accepted only).
	Path string

	// Bytes is the number of bytes written (accepted only).
	Bytes int

	// Reason explains a rejection.
	Reason string

	// Err is set for failed outcomes and wraps ErrDownloadItem.
	Err error
}

// DownloadSummary counts outcomes by status.
type DownloadSummary struct {
	Accepted int
	Rejected int
	Failed   int
}

// Summarise counts outcomes by status.
func Summarise(outcomes []DownloadOutcome) DownloadSummary {
	var s DownloadSummary
	for i := range outcomes {
		switch outcomes[i].Status {
		case DownloadAccepted:
			s.Accepted++
		case DownloadRejected:
			s.Rejected++
		case DownloadFailed:
			s.Failed++
		}
	}
	return s
}
