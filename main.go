package main

import (
	"github.com/hance08/netpay/cmd"
)

func main() {
	cmd.Execute()
}
