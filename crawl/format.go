package crawl

import "fmt"

// FormatProgress renders a one-line crawl counter such as "[12 crawled, 30 queued]".
func FormatProgress(crawled, queued int) string {
	return fmt.Sprintf("[%d crawled, %d queued]", crawled, queued)
}
