// Package jwt provides JSON Web Token utilities for the Packwise API.
//
// Tokens are RS256-signed. The Service loads an RSA key pair from PEM
// files and handles signing and validation.
//
// # Token Generation
//
// Sign tokens for authenticated users:
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "./keys/private.pem",
//	    PublicKeyPath:  "./keys/public.pem",
//	    Issuer:         "api.packwise.dev",
//	    ExpirationMins: 15,
//	})
//
//	token, err := service.Sign(jwt.Claims{
//	    Subject: user.ID,
//	    UserID:  user.ID,
//	    Email:   user.Email,
//	})
//
// # Token Validation
//
// Validate and extract claims:
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//	userID := claims.Subject
//
// # Key Generation
//
// GenerateKeyPair writes a fresh 2048-bit RSA key pair to disk; the
// keygen command wraps it for local setup.
package jwt
