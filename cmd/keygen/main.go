package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/packwise/api/pkg/jwt"
)

func main() {
	// Flags for customization
	dir := flag.String("dir", "./keys", "Directory for the generated key pair")
	force := flag.Bool("force", false, "Overwrite existing keys")

	flag.Parse()

	privateKeyPath := filepath.Join(*dir, "private.pem")
	publicKeyPath := filepath.Join(*dir, "public.pem")

	if !*force {
		if _, err := os.Stat(privateKeyPath); err == nil {
			fmt.Fprintf(os.Stderr, "Key already exists at %s (use -force to overwrite)\n", privateKeyPath)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(*dir, 0700); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating key directory: %v\n", err)
		os.Exit(1)
	}

	if err := jwt.GenerateKeyPair(privateKeyPath, publicKeyPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating key pair: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("RSA Key Pair Generated")
	fmt.Println("======================")
	fmt.Printf("Private key:  %s\n", privateKeyPath)
	fmt.Printf("Public key:   %s\n", publicKeyPath)
	fmt.Println()
	fmt.Println("Point the server at them with:")
	fmt.Printf("  JWT_PRIVATE_KEY_PATH=%s JWT_PUBLIC_KEY_PATH=%s\n", privateKeyPath, publicKeyPath)
}
