package webdigest

import "fmt"

// maxPromptContent caps how much article text is embedded in a prompt, in
// runes. Long pages would otherwise blow past provider context limits.
const maxPromptContent = 3000

// SummaryPrompt builds the prompt sent to language-model backends for
// summary generation. All backends share one prompt shape; exactly matching
// any one vendor's format is a non-goal.
func SummaryPrompt(content, title string) string {
	return fmt.Sprintf(`请为以下文章生成一个简洁准确的摘要，字数在100-200字之间：

文章标题: %s

文章内容: %s

请生成摘要:`, title, truncateRunes(content, maxPromptContent))
}

// TitlePrompt builds the prompt sent to language-model backends for title
// generation.
func TitlePrompt(content string) string {
	return fmt.Sprintf(`请为以下文章生成一个简洁的标题，不超过20个字，直接输出标题本身：

文章内容: %s

请生成标题:`, truncateRunes(content, 1000))
}
