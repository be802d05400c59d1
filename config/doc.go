// Package config loads comparison scenarios from HCL files.
//
// Each file holds any number of scenario blocks:
//
//	scenario "dense" {
//	  graph       = "complete"   # complete | sparse | path
//	  vertices    = 1000
//	  max_weight  = 1000
//	  loops       = 10
//	  delta       = 50
//	  parallelism = cpus
//	  algorithms  = ["delta-stepping", "radius-stepping"]
//	  verify      = true
//	}
//
// Files are parsed with hclparse and decoded with gohcl into bench.Scenario
// values. Expressions see one variable, cpus, the GOMAXPROCS value of the
// loading process. Absent optional attributes take the bench defaults and
// every scenario is validated before it is returned.
package config
