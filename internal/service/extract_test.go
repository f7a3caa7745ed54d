package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestExtractReply(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Reply
	}{
		{
			name: "well formed reply",
			text: `{"answer": 3, "reasoning": "because X", "sources": ["https://a.example", "https://b.example"]}`,
			want: Reply{
				Answer:    intPtr(3),
				Reasoning: "because X",
				Sources:   []string{"https://a.example", "https://b.example"},
			},
		},
		{
			name: "null answer",
			text: `{"answer": null, "reasoning": "нет вариантов"}`,
			want: Reply{Reasoning: "нет вариантов", Sources: []string{}},
		},
		{
			name: "missing reasoning and sources",
			text: `{"answer": 7}`,
			want: Reply{Answer: intPtr(7), Sources: []string{}},
		},
		{
			name: "code fence and newlines around fields",
			text: "```json\n{\n  \"answer\":\n 2,\n  \"reasoning\": \"ИТМО основан в 1900 году\"\n}\n```",
			want: Reply{Answer: intPtr(2), Reasoning: "ИТМО основан в 1900 году", Sources: []string{}},
		},
		{
			name: "answer out of choice range is kept",
			text: `{"answer": 42}`,
			want: Reply{Answer: intPtr(42), Sources: []string{}},
		},
		{
			name: "plain prose",
			text: "Не знаю.",
			want: Reply{Sources: []string{}},
		},
		{
			name: "quote inside reasoning truncates it",
			text: `{"answer": 1, "reasoning": "университет \"ИТМО\" в Петербурге"}`,
			want: Reply{Answer: intPtr(1), Reasoning: `университет \`, Sources: []string{}},
		},
		{
			name: "first bracket group after sources key wins",
			text: `{"sources": ["https://itmo.ru"], "extra": {"sources": ["https://other.example"]}}`,
			want: Reply{Sources: []string{"https://itmo.ru"}},
		},
		{
			name: "empty reasoning string yields empty",
			text: `{"answer": 5, "reasoning": ""}`,
			want: Reply{Answer: intPtr(5), Sources: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractReply(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractReply_AnswerOverflow(t *testing.T) {
	_, err := ExtractReply(`{"answer": 99999999999999999999999}`)
	assert.Error(t, err)
}

func TestBuildMessages(t *testing.T) {
	msgs := BuildMessages("В каком году основан ИТМО?\n1. 1900\n2. 1910")

	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "Университете ИТМО")
	assert.Contains(t, msgs[0].Content, `"answer"`)
	assert.Contains(t, msgs[0].Content, `"reasoning"`)
	assert.Equal(t, "user", msgs[1].Role)
	assert.Equal(t, "В каком году основан ИТМО?\n1. 1900\n2. 1910", msgs[1].Content)

	assert.Equal(t, msgs, BuildMessages("В каком году основан ИТМО?\n1. 1900\n2. 1910"))
}
