// Package kernel provides core domain primitives shared by the field routing model.
//
// The package includes:
//   - ID: a positive integer identity used for work orders, production ids and technicians
//   - Clock: the time source injected into command handlers
//
// These primitives are immutable and safe for concurrent use.
package kernel
