package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"matjar_back_end/internal/i18n"
)

// LocalizedText est un texte décliné en arabe, anglais et français.
// En base il est stocké en jsonb.
type LocalizedText map[string]string

// LocalizedList est une liste de points (avantages, caractéristiques)
// déclinée dans les trois langues.
type LocalizedList map[string][]string

// Normalized retourne une copie portant toujours les trois langues, les
// absentes valant "".
func (t LocalizedText) Normalized() LocalizedText {
	out := make(LocalizedText, len(i18n.Languages))
	for _, lang := range i18n.Languages {
		out[lang] = t[lang]
	}
	return out
}

// Normalized retourne une copie portant toujours les trois langues, les
// absentes valant une liste vide (jamais nil, pour sérialiser en [] et non
// null).
func (l LocalizedList) Normalized() LocalizedList {
	out := make(LocalizedList, len(i18n.Languages))
	for _, lang := range i18n.Languages {
		values := l[lang]
		if values == nil {
			values = []string{}
		}
		out[lang] = append([]string(nil), values...)
	}
	return out
}

func (t LocalizedText) Value() (driver.Value, error) {
	return json.Marshal(t.Normalized())
}

func (t *LocalizedText) Scan(value interface{}) error {
	return scanJSON(value, t)
}

func (l LocalizedList) Value() (driver.Value, error) {
	return json.Marshal(l.Normalized())
}

func (l *LocalizedList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("type %T inattendu pour une colonne jsonb", value)
	}
}
