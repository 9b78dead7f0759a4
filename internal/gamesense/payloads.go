package gamesense

// Event names bound by Register.
const (
	EventShortVibrate = "SHORT_VIBRATE"
	EventLongVibrate  = "LONG_VIBRATE"
	EventGrandVibrate = "GRAND_VIBRATE"
	EventDisplay      = "DISPLAY"
)

// eventValue is sent with every event; handlers ignore it.
const eventValue = 100

type gameMetadata struct {
	Game            string `json:"game"`
	GameDisplayName string `json:"game_display_name"`
}

type gameRef struct {
	Game string `json:"game"`
}

// step is one entry of a vibration pattern. Custom steps carry a length;
// predefined ones are named by Type alone.
type step struct {
	Type     string `json:"type"`
	LengthMs int    `json:"length-ms,omitempty"`
	DelayMs  int    `json:"delay-ms"`
}

func customStep(lengthMs, delayMs int) step {
	return step{Type: "custom", LengthMs: lengthMs, DelayMs: delayMs}
}

type screenData struct {
	HasText   bool  `json:"has-text"`
	ImageData []int `json:"image-data"`
}

type handler struct {
	DeviceType string       `json:"device-type"`
	Zone       string       `json:"zone"`
	Mode       string       `json:"mode"`
	Pattern    []step       `json:"pattern,omitempty"`
	Datas      []screenData `json:"datas,omitempty"`
}

func vibrateHandler(pattern ...step) handler {
	return handler{DeviceType: "tactile", Zone: "one", Mode: "vibrate", Pattern: pattern}
}

type binding struct {
	Game          string    `json:"game"`
	Event         string    `json:"event"`
	ValueOptional bool      `json:"value_optional"`
	Handlers      []handler `json:"handlers"`
}

type frameData struct {
	ImageData []int `json:"image-data-128x36"`
}

type eventData struct {
	Value int        `json:"value"`
	Frame *frameData `json:"frame,omitempty"`
}

type gameEvent struct {
	Game  string    `json:"game"`
	Event string    `json:"event"`
	Data  eventData `json:"data"`
}

// patterns are the vibrations bound for each event. A pattern holds at most
// five steps, a custom step counting as two.
var patterns = map[string][]step{
	EventShortVibrate: {customStep(200, 0)},
	EventLongVibrate:  {customStep(600, 0)},
	EventGrandVibrate: {
		customStep(200, 200),
		{Type: "ti_predefined_doubleclick_100", DelayMs: 350},
		customStep(600, 0),
	},
}
