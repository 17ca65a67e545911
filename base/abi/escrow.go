package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var EscrowABI abi.ABI

var escrowABI = `[{"type":"function","name":"listAsset","constant":false,"payable":false,"inputs":[{"type":"uint256","name":"serialNumber"},{"type":"uint256","name":"price"}],"outputs":[]},{"type":"function","name":"cancelListing","constant":false,"payable":false,"inputs":[{"type":"uint256","name":"serialNumber"}],"outputs":[]},{"type":"function","name":"fundEscrow","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"uint256","name":"serialNumber"}],"outputs":[]},{"type":"function","name":"confirmDelivery","constant":false,"payable":false,"inputs":[{"type":"uint256","name":"serialNumber"}],"outputs":[]},{"type":"function","name":"getListing","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"serialNumber"}],"outputs":[{"type":"address","name":"seller"},{"type":"address","name":"buyer"},{"type":"uint256","name":"price"},{"type":"uint8","name":"state"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(escrowABI))
	if err != nil {
		panic("Failed to parse escrow abi")
	}
	EscrowABI = _abi
}
