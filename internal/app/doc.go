// Package app is the stepcompare application: it turns a validated Config
// into a logger, a set of loaded scenarios and a metrics registry, then runs
// the scenarios and prints the comparison table.
package app
