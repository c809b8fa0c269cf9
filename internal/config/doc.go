// Package config provides configuration loading, merging, and validation
// facilities for the server and the client.
//
// Configuration is assembled from the following sources, later ones
// overriding non-zero fields of earlier ones:
//  1. JSON config file (path from CONFIG or -c / -config)
//  2. Environment variables, with an optional .env file filling the unset ones
//  3. Command-line flags
//
// Defaults fill whatever is still empty. The main entry points are
// [GetStructuredConfig] for the server and [GetClientConfig] for the client.
package config
