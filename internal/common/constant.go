// Package common contains shared constants and sentinel errors used across
// loginflow components.
package common

// AppName identifies the application in log records and token claims.
const AppName = "loginflow"
