// This program manages the key files that back transaction senders.
package main

import "github.com/ardanlabs/hashledger/app/tooling/keys/cmd"

func main() {
	cmd.Execute()
}
