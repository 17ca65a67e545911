package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var AssetTokenABI abi.ABI

var assetTokenABI = `[{"type":"function","name":"approve","constant":false,"payable":false,"inputs":[{"type":"address","name":"to"},{"type":"uint256","name":"serialNumber"}],"outputs":[]},{"type":"function","name":"ownerOf","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"serialNumber"}],"outputs":[{"type":"address","name":"owner"}]},{"type":"function","name":"getApproved","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"serialNumber"}],"outputs":[{"type":"address","name":"operator"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(assetTokenABI))
	if err != nil {
		panic("Failed to parse asset token abi")
	}
	AssetTokenABI = _abi
}
