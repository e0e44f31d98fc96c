package commands

import "github.com/mobile-next/mobileinput/types"

type KeyCodeInfo struct {
	Name string `json:"name"`
	Code int    `json:"code"`
}

// KeyCodesCommand lists the named keys accepted by KeyCommand
func KeyCodesCommand() *CommandResponse {
	var keys []KeyCodeInfo
	for _, name := range types.KeyNames() {
		code, _ := types.LookupKeyCode(name)
		keys = append(keys, KeyCodeInfo{Name: name, Code: code})
	}

	return NewSuccessResponse(map[string]interface{}{
		"keys": keys,
	})
}
