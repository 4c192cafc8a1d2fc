// Package config provides the application configuration settings and their
// validation. Settings are plain structs validated with go-playground/validator
// so that misconfiguration is caught once, at startup, rather than at use sites.
package config
