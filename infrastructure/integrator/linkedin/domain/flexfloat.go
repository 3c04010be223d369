package linkedindomain

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FlexFloat aceita os três formatos em que campos de custo chegam da
// API: número, string numérica ou null/string vazia. Ausente, nulo ou
// vazio vira 0. Uma string não numérica também vira 0 no modo leniente;
// o validador em modo estrito usa StrictCost para rejeitar o lote.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	v, _ := coerceCost(data)
	*f = FlexFloat(v)
	return nil
}

// StrictCost valida um campo de custo bruto sem coerção best-effort:
// retorna erro para qualquer valor não numérico e não vazio.
func StrictCost(data []byte) error {
	_, err := coerceCost(data)
	return err
}

func coerceCost(data []byte) (float64, error) {
	s := strings.TrimSpace(string(bytes.Trim(data, "\x00")))
	if s == "" || s == "null" {
		return 0, nil
	}

	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return 0, errors.Wrapf(err, "campo de custo malformado: %s", s)
		}
		unquoted = strings.TrimSpace(unquoted)
		if unquoted == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(unquoted, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "campo de custo não numérico: %q", unquoted)
		}
		return v, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "campo de custo não numérico: %s", s)
	}
	return v, nil
}
