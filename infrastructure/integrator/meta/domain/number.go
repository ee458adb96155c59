package metadomain

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/meta-ads-navigator/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NumericString aceita números enviados pela API tanto como texto ("12345")
// quanto como número (12345). null e valores malformados nunca geram erro de
// decodificação; a conversão posterior devolve 0.
type NumericString string

func (n *NumericString) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		*n = ""
		return nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = ""
			return nil
		}
		*n = NumericString(s)
		return nil
	}

	*n = NumericString(raw)
	return nil
}

func (n NumericString) String() string {
	return string(n)
}

func (n NumericString) IsEmpty() bool {
	return strings.TrimSpace(string(n)) == ""
}

func (n NumericString) Float() float64 {
	return utils.ParseFloatOrZero(string(n))
}

func (n NumericString) Int64() int64 {
	return utils.ParseInt64OrZero(string(n))
}
