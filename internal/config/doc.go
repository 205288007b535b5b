// Package config loads the stacks configuration.
//
// The config file lives at ~/.config/stacks/config.toml by default:
//
//	api_url = "http://127.0.0.1:4000"
//
// A missing file is not an error; stacks works out of the box against a
// record store on the default local address. The STACKS_API_URL environment
// variable (including values from a .env file in the working directory)
// overrides the file so deployments can point the client without writing
// config.
package config
