// Command hashpassword reads a password from stdin and prints the bcrypt
// hash to put in OPERATOR_PASSWORD_HASH.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"Catalyst/internal/auth"
)

func main() {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		log.Fatalf("read password: %v", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		log.Fatal("empty password")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	fmt.Println(hash)
}
