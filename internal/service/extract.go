package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Ответ модели это "мягкий" JSON: ищем поля регулярками, а не парсером.
// Кавычки внутри reasoning обрывают совпадение; для sources берётся первая
// скобочная группа во всём тексте.
var (
	answerRe    = regexp.MustCompile(`"answer":\s*(\d+|null)`)
	reasoningRe = regexp.MustCompile(`"reasoning":\s*"([^"]+)"`)
	sourcesRe   = regexp.MustCompile(`"sources":\s*\[([^\]]+)\]`)
)

// Reply: поля, извлечённые из текста модели
type Reply struct {
	Answer    *int
	Reasoning string
	Sources   []string
}

// ExtractReply достаёт answer / reasoning / sources из сырого текста.
// Отсутствующие поля не ошибка: nil, "" и пустой список соответственно.
func ExtractReply(text string) (Reply, error) {
	out := Reply{Sources: []string{}}

	if m := answerRe.FindStringSubmatch(text); m != nil && m[1] != "null" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Reply{}, fmt.Errorf("parse answer %q: %w", m[1], err)
		}
		out.Answer = &n
	}

	if m := reasoningRe.FindStringSubmatch(text); m != nil {
		out.Reasoning = m[1]
	}

	if m := sourcesRe.FindStringSubmatch(text); m != nil {
		for _, tok := range strings.Split(m[1], ", ") {
			out.Sources = append(out.Sources, strings.Trim(strings.TrimSpace(tok), `"`))
		}
	}

	return out, nil
}
