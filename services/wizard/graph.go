package wizard

import (
	"jdservices/models"
)

// State names a node in the wizard step graph.
type State string

const (
	StateContact         State = "contact"
	StateAddressLookup   State = "addressLookup"
	StatePropertyDetails State = "propertyDetails"
	StateFrequency       State = "frequency"
	StateCoverage        State = "coverage"
	StateMeasurement     State = "measurement"
	StateRooms           State = "rooms"
	StateSelection       State = "selection"
	StateEstimate        State = "estimate"
	StateScheduleVisit   State = "scheduleVisit"
)

// edge is a guarded transition; the first edge whose guard passes wins.
type edge struct {
	to   State
	when func(s *models.WizardSession) bool
}

func always(*models.WizardSession) bool { return true }

func isSpecific(s *models.WizardSession) bool {
	return s.Coverage == models.CoverageSpecific
}

func knowsMeasurements(s *models.WizardSession) bool {
	return s.KnowsSqFt != nil && *s.KnowsSqFt
}

// stepGraphs holds one acyclic step graph per service. Total step counts and
// labels are derived by walking the graph, so branch shape has a single
// source of truth.
//
// Flooring: Contact → AddressLookup → PropertyDetails → Coverage →
//
//	whole:    Selection → Estimate                          (6 steps)
//	specific: Measurement → Rooms → Selection → Estimate    (8 steps)
//	specific: Measurement → ScheduleVisit                   (6 steps)
//
// Cleaning swaps AddressLookup for a Frequency step after PropertyDetails.
var stepGraphs = map[models.Service]map[State][]edge{
	models.ServiceFlooring: {
		StateContact:         {{StateAddressLookup, always}},
		StateAddressLookup:   {{StatePropertyDetails, always}},
		StatePropertyDetails: {{StateCoverage, always}},
		StateCoverage: {
			{StateMeasurement, isSpecific},
			{StateSelection, always},
		},
		StateMeasurement: {
			{StateRooms, knowsMeasurements},
			{StateScheduleVisit, always},
		},
		StateRooms:     {{StateSelection, always}},
		StateSelection: {{StateEstimate, always}},
	},
	models.ServiceCleaning: {
		StateContact:         {{StatePropertyDetails, always}},
		StatePropertyDetails: {{StateFrequency, always}},
		StateFrequency:       {{StateCoverage, always}},
		StateCoverage: {
			{StateMeasurement, isSpecific},
			{StateSelection, always},
		},
		StateMeasurement: {
			{StateRooms, knowsMeasurements},
			{StateScheduleVisit, always},
		},
		StateRooms:     {{StateSelection, always}},
		StateSelection: {{StateEstimate, always}},
	},
}

// Path walks the session's step graph from Contact to the reachable terminal
// for the branch the session is currently on.
func Path(s *models.WizardSession) []State {
	g, ok := stepGraphs[s.Service]
	if !ok {
		return nil
	}
	path := []State{StateContact}
	cur := StateContact
	for {
		var next State
		for _, e := range g[cur] {
			if e.when(s) {
				next = e.to
				break
			}
		}
		if next == "" {
			return path
		}
		path = append(path, next)
		cur = next
	}
}

// TotalSteps is the number of steps on the session's current branch.
func TotalSteps(s *models.WizardSession) int {
	return len(Path(s))
}

// Current resolves the session's 1-based step to a state. The empty state
// means the step is out of range for the current branch.
func Current(s *models.WizardSession) State {
	path := Path(s)
	if s.Step < 1 || s.Step > len(path) {
		return ""
	}
	return path[s.Step-1]
}

// Label returns the short progress label shown for a state.
func Label(svc models.Service, st State) string {
	switch st {
	case StateContact:
		return "Contact"
	case StateAddressLookup:
		return "Data Source"
	case StatePropertyDetails:
		return "Details"
	case StateFrequency:
		return "Frequency"
	case StateCoverage:
		return "Coverage"
	case StateMeasurement:
		return "Measure"
	case StateRooms:
		return "Rooms"
	case StateSelection:
		if svc == models.ServiceCleaning {
			return "Type"
		}
		return "Material"
	case StateEstimate:
		return "Estimate"
	case StateScheduleVisit:
		return "Schedule"
	}
	return ""
}

// Labels renders the progress labels for the session's current branch.
func Labels(s *models.WizardSession) []string {
	path := Path(s)
	labels := make([]string, len(path))
	for i, st := range path {
		labels[i] = Label(s.Service, st)
	}
	return labels
}

// Title returns the heading for a state.
func Title(svc models.Service, st State) string {
	switch st {
	case StateContact:
		return "Contact Information"
	case StateAddressLookup:
		return "Property Data Source"
	case StatePropertyDetails:
		return "Property Details"
	case StateFrequency:
		return "Cleaning Frequency"
	case StateCoverage:
		return "Coverage Area"
	case StateMeasurement:
		return "Measurement Knowledge"
	case StateRooms:
		return "Define Areas"
	case StateSelection:
		if svc == models.ServiceCleaning {
			return "Choose Cleaning Type"
		}
		return "Choose Flooring Material"
	case StateEstimate:
		return "Your Estimate"
	case StateScheduleVisit:
		return "Schedule Visit"
	}
	return ""
}
