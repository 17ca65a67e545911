package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var LendingPoolABI abi.ABI

var lendingPoolABI = `[{"type":"function","name":"takeLoan","constant":false,"payable":false,"inputs":[{"type":"uint256","name":"serialNumber"},{"type":"uint256","name":"principal"},{"type":"uint256","name":"interest"},{"type":"uint256","name":"duration"}],"outputs":[]},{"type":"function","name":"repayLoan","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"uint256","name":"serialNumber"}],"outputs":[]},{"type":"function","name":"liquidate","constant":false,"payable":false,"inputs":[{"type":"uint256","name":"serialNumber"},{"type":"address","name":"destination"}],"outputs":[]},{"type":"function","name":"depositLiquidity","constant":false,"stateMutability":"payable","payable":true,"inputs":[],"outputs":[]},{"type":"function","name":"getLoan","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"serialNumber"}],"outputs":[{"type":"address","name":"borrower"},{"type":"uint256","name":"principal"},{"type":"uint256","name":"interest"},{"type":"uint256","name":"dueTime"},{"type":"uint8","name":"state"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(lendingPoolABI))
	if err != nil {
		panic("Failed to parse lending pool abi")
	}
	LendingPoolABI = _abi
}
