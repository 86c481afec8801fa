// Package config loads Packwise configuration from the environment.
//
// Every setting has a development default except secrets: the JWT key
// paths must exist in production and the currency API key is only ever
// read from CURRENCY_API_KEY. cmd/server loads a .env file first via
// godotenv, so local overrides live there rather than in shell profiles.
package config
