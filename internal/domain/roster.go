package domain

// Roster is the ordered, id-indexed collection of employees
type Roster struct {
	Employees  map[string]Employee
	OrderedIDs []string
}

// NewRoster builds a roster from a list, keeping list order.
// Entries without an id are skipped; on duplicate ids the first entry wins.
func NewRoster(employees []Employee) *Roster {
	r := &Roster{
		Employees:  make(map[string]Employee, len(employees)),
		OrderedIDs: make([]string, 0, len(employees)),
	}
	for _, e := range employees {
		if e.ID == "" {
			continue
		}
		if _, exists := r.Employees[e.ID]; exists {
			continue
		}
		if e.Status == "" {
			e.Status = StatusOffDuty
		}
		r.Employees[e.ID] = e
		r.OrderedIDs = append(r.OrderedIDs, e.ID)
	}
	return r
}

// Get returns the employee with the given id
func (r *Roster) Get(id string) (Employee, bool) {
	if r == nil {
		return Employee{}, false
	}
	e, ok := r.Employees[id]
	return e, ok
}

// Len returns the number of employees in the roster
func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.OrderedIDs)
}

// List returns employees in roster order
func (r *Roster) List() []Employee {
	if r == nil {
		return nil
	}
	list := make([]Employee, 0, len(r.OrderedIDs))
	for _, id := range r.OrderedIDs {
		list = append(list, r.Employees[id])
	}
	return list
}

// FindByPin returns the first employee, in roster order, whose pin code
// equals pin exactly. Comparison is on strings so leading zeros matter.
func (r *Roster) FindByPin(pin string) (Employee, bool) {
	if r == nil || pin == "" {
		return Employee{}, false
	}
	for _, id := range r.OrderedIDs {
		e := r.Employees[id]
		if e.PinCode != "" && e.PinCode == pin {
			return e, true
		}
	}
	return Employee{}, false
}
