package utils

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			fmt.Println(err)
			return string(raw)
		}
		in = decoded
	}

	out, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		fmt.Println(err)
	}

	return string(out)
}

// CompactJson serializa o valor em uma linha, retornando "{}" em caso de erro
func CompactJson(in any) string {
	buffer, err := json.Marshal(in)
	if err != nil {
		return "{}"
	}

	return string(buffer)
}
