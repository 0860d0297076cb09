package ai

import (
	"encoding/json"
	"strings"
)

// stripCodeFences retire l'éventuel habillage Markdown (```json ... ```)
// autour de la réponse du modèle avant le parsing JSON.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// decodeModelJSON parse la réponse du modèle après nettoyage des fences.
func decodeModelJSON(op, content string, dest interface{}) error {
	cleaned := stripCodeFences(content)
	if cleaned == "" {
		return upstreamf(op, "le modèle n'a renvoyé aucun contenu")
	}
	if err := json.Unmarshal([]byte(cleaned), dest); err != nil {
		return upstreamf(op, "réponse du modèle non parseable: %v", err)
	}
	return nil
}
