package utils

import (
	"net"
)

// IsAddrAvailable reports whether a TCP listener can bind addr ("host:port"
// or ":port").
func IsAddrAvailable(addr string) bool {
	Verbose("Checking if %s is available", addr)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		Verbose("error: %v", err)
		return false
	}

	defer listener.Close()
	return true
}
