package webdigest

// MaxPostLength is the character limit for a short post.
const MaxPostLength = 140

// FormatPost renders (title, summary, url) into a length-bounded short post:
//
//	【title】summary 更多内容: url
//
// with the title cut to 20 characters and the summary to 80. If the result
// exceeds MaxPostLength it is re-rendered with the summary cut to 60, a
// truncation ellipsis, and a shorter suffix label. The re-rendered post
// stays within MaxPostLength whenever the URL leaves room for it; the URL
// itself is never cut, so a URL longer than the remaining budget overflows
// by its own excess. Pure formatting; only truncates, never errors. All
// limits are rune counts.
func FormatPost(title, summary, url string) string {
	titlePart := truncateRunes(title, 20)
	summaryPart := truncateRunes(summary, 80)

	post := "【" + titlePart + "】" + summaryPart + " 更多内容: " + url
	if len([]rune(post)) > MaxPostLength {
		post = "【" + titlePart + "】" + truncateRunes(summary, 60) + "... 详情: " + url
	}
	return post
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
