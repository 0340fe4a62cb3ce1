// Package chatbot answers chat messages from a fixed keyword table.
package chatbot

import "strings"

// replies maps a lowercased keyword to a canned answer. First match in
// table order wins; lookup is substring-based so "olá, tudo bem?" still
// hits "olá".
var replies = []struct {
	keyword string
	answer  string
}{
	{"olá", "Olá! Como posso ajudar com suas leituras hoje?"},
	{"oi", "Oi! Procurando um livro novo?"},
	{"recomenda", "Que tal buscar por um autor que você gosta na página de busca?"},
	{"obrigado", "De nada! Boas leituras!"},
	{"obrigada", "De nada! Boas leituras!"},
	{"tchau", "Até logo! Volte sempre."},
}

const fallback = "Desculpe, não entendi. Pergunte sobre livros ou diga 'olá'!"

// Reply returns the canned answer for message, or a fixed fallback when
// no keyword matches.
func Reply(message string) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	for _, r := range replies {
		if strings.Contains(normalized, r.keyword) {
			return r.answer
		}
	}
	return fallback
}
