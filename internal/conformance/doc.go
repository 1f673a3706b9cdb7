// Package conformance provides scenario-driven tests for the query
// param converter.
//
// Scenarios feed a raw parameter mapping through the public Convert
// API and pin the outcome: successful conversions are compared, as
// canonical JSON, against golden descriptor snapshots; failing
// conversions are matched against an expected error substring.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	publication_states: [live, preview]   # optional override
//	defaults:                             # optional, mirrors restq.Defaults
//	  start: 20
//	  limit: 5
//	  sort: ["price:desc"]
//	  publication_state: preview
//	  where: { archived: false }
//	params:                               # raw input under test
//	  _sort: "price:desc"
//	  stars_gte: 4
//	golden: scenario_name                 # or: error: "message substring"
//
// Unknown fields are rejected at load time. Every scenario names
// exactly one expectation: a golden file under testdata/golden, or an
// error substring.
//
// # Deterministic Comparison
//
// Descriptors are encoded with restq.MarshalCanonical (sorted keys,
// NFC-normalized strings, no HTML escaping), so a scenario's golden
// bytes are identical across runs and platforms.
//
// # Usage
//
// Load and run all scenarios:
//
//	scenarios, err := conformance.LoadScenarios("testdata/scenarios")
//	if err != nil {
//	    t.Fatal(err)
//	}
//	runner := conformance.NewRunner()
//	for _, scenario := range scenarios {
//	    t.Run(scenario.Name, func(t *testing.T) {
//	        runner.Run(t, scenario)
//	    })
//	}
//
// Regenerate golden files after an intentional behavior change:
//
//	go test ./internal/conformance -update
package conformance
