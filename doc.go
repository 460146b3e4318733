// Package versionstring gives a binary and every library it statically links a
// build-time version identity derived from git history.
//
// The versionstring generator (cmd/versionstring) is run once per build per
// component. It inspects the component's git repository and writes a small Go
// source file containing a [Descriptor] constant plus a package-level variable
// initializer that registers the descriptor into the process-wide registry.
// Because package-level initializers run before main, every linked component's
// descriptor is registered before application code can observe the registry.
//
// At run time the application prints the collected chain:
//
//	versionstring.Write(os.Stdout, verbose)
//
// which produces one block per registered component, separated by lines
// containing a single "-", in registration order. Registration order follows
// package initialization order of the final binary and is therefore a property
// of the build, not of source order.
//
// A component only appears in the chain if the package holding its generated
// file is actually imported by the final binary. A generated file in a package
// nothing imports is never linked, and its registration silently does not
// happen. That is the caller's obligation to avoid, not something the registry
// can detect.
package versionstring
