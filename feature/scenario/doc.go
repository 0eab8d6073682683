/*
Package scenario replays scripted layout changes against a headless widget.

A scenario declares the initial groups and sections, then a list of steps that mutate
the model or ask the adapter to render:

	name: s0
	view:
	  deferred: true
	groups:
	  - id: feed
	    sections:
	      - {id: a, items: 1, header: true}
	      - {id: b, items: 2}
	steps:
	  - action: reload
	  - action: set_items
	    section: b
	    items: 4
	  - action: reload_group
	    group: feed
	    animated: true
	  - action: flush

Run drives a real adapter over a headless view and collects a Report with every render,
the completion order and a unified diff of the layout before and after. Plan computes
the section batch between the initial and the final model without rendering.

The feature exposes POST /scenario/run and POST /scenario/plan, both taking a YAML
scenario as the request body.
*/
package scenario
