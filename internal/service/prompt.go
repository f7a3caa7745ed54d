package service

import (
	"github.com/sashabaranov/go-openai"
)

const systemPrompt = `Ты — помощник, отвечающий на вопросы об Университете ИТМО.

- Отвечай кратко и только на русском языке.
- Если вопрос содержит варианты (числа от 1 до 10), укажи правильный номер. Если вариантов нет, верни null.
- Если нашёл источники, добавь их в ответ в формате ссылок. Если нет, оставь пустой список.
- **Не используй лишний текст. Твой ответ ДОЛЖЕН быть ЧИСТЫМ JSON.**
- **Не добавляй "json\n{" или ` + "```json```" + ` перед ответом. Просто верни JSON.**

Формат ответа:
{
  "answer": <число или null>,
  "reasoning": "<объяснение>"
}
`

// BuildMessages собирает system + user сообщения для вопроса
func BuildMessages(question string) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: question},
	}
}
