package measurement

// Secondary value keys, mirroring the inbound field names.
const (
	KeyHRVScore             = "hrvScore"
	KeyTemperatureDeviation = "temperatureDeviation"
	KeyRecoveryIndex        = "recoveryIndex"
	KeyTotalSleepTime       = "totalSleepTime"
	KeyDeepSleepTime        = "deepSleepTime"
	KeyActiveCalories       = "activeCalories"
	KeySteps                = "steps"
	KeyStressHighDuration   = "stressHighDuration"
)

type Record struct {
	Available bool
	Primary   int
	Secondary map[string]int
}

// Store holds the latest record per kind. The zero value is ready to use and
// reports every kind as unavailable.
type Store struct {
	records [NumKinds]Record
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Get(k Kind) Record {
	r := s.records[KindOf(int(k))]
	if r.Secondary != nil {
		cp := make(map[string]int, len(r.Secondary))
		for key, v := range r.Secondary {
			cp[key] = v
		}
		r.Secondary = cp
	}
	return r
}

// Set replaces the whole record for k; groups are never partially applied.
func (s *Store) Set(k Kind, r Record) {
	s.records[KindOf(int(k))] = r
}

// LoadSample fills every kind with the demo values shown before the
// companion has sent anything.
func (s *Store) LoadSample() {
	s.Set(HeartRate, Record{
		Available: true,
		Primary:   65,
		Secondary: map[string]int{KeyHRVScore: 45},
	})
	s.Set(Readiness, Record{
		Available: true,
		Primary:   85,
		Secondary: map[string]int{KeyTemperatureDeviation: 0, KeyRecoveryIndex: 82},
	})
	s.Set(Sleep, Record{
		Available: true,
		Primary:   78,
		Secondary: map[string]int{KeyTotalSleepTime: 450, KeyDeepSleepTime: 90},
	})
	s.Set(Activity, Record{
		Available: true,
		Primary:   82,
		Secondary: map[string]int{KeySteps: 8500, KeyActiveCalories: 420},
	})
	s.Set(Stress, Record{
		Available: true,
		Primary:   720,
		Secondary: map[string]int{KeyStressHighDuration: 300},
	})
}

// Snapshot copies every record, indexed by Kind.
func (s *Store) Snapshot() [NumKinds]Record {
	var out [NumKinds]Record
	for _, k := range Kinds {
		out[k] = s.Get(k)
	}
	return out
}
