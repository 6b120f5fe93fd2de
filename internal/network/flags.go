/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package network

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// AddListenerFlags adds to the given flag set the flags needed to configure a network listener. It
// receives the name of the listener and the default address. For example, the API listener:
//
//	network.AddListenerFlags(flags, network.APIListener, network.APIAddress)
//
// results in the following flags:
//
//	--api-listener-address string API listen address. (default "localhost:8080")
//	--api-listener-tls-crt string API TLS certificate in PEM format.
//	--api-listener-tls-key string API TLS key in PEM format.
func AddListenerFlags(set *pflag.FlagSet, name, addr string) {
	_ = set.String(
		listenerFlagName(name, listenerAddrFlagSuffix),
		addr,
		fmt.Sprintf("%s listen address.", name),
	)
	_ = set.String(
		listenerFlagName(name, listenerTLSCrtFlagSuffix),
		"",
		fmt.Sprintf("%s TLS certificate in PEM format.", name),
	)
	_ = set.String(
		listenerFlagName(name, listenerTLSKeyFlagSuffix),
		"",
		fmt.Sprintf("%s TLS key in PEM format.", name),
	)
}

// Names of the flags:
const (
	listenerAddrFlagSuffix   = "listener-address"
	listenerTLSCrtFlagSuffix = "listener-tls-crt"
	listenerTLSKeyFlagSuffix = "listener-tls-key"
)

// listenerFlagName calculates a complete flag name from a listener name and a flag name suffix.
// For example, if the listener name is 'API' and the flag name suffix is 'listener-address' it
// returns 'api-listener-address'.
func listenerFlagName(name, suffix string) string {
	return fmt.Sprintf("%s-%s", strings.ToLower(name), suffix)
}
