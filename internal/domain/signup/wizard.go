package signup

// Wizard walks personal -> security -> address. Moving forward requires the current
// step to validate; Submit re-validates every step and lands on the first failure.
type Wizard struct {
	step   Step
	errors FieldErrors
}

func NewWizard() *Wizard {
	return &Wizard{step: StepPersonal, errors: FieldErrors{}}
}

// ResumeAt restores a wizard positioned on step, e.g. from a client round trip.
func ResumeAt(step Step) *Wizard {
	if step.index() < 0 {
		step = StepPersonal
	}
	return &Wizard{step: step, errors: FieldErrors{}}
}

func (w *Wizard) Step() Step          { return w.step }
func (w *Wizard) Errors() FieldErrors { return w.errors }
func (w *Wizard) IsLast() bool        { return w.step.index() == len(Steps)-1 }

// Next validates the current step and advances on success. It never moves past the last step.
func (w *Wizard) Next(d Draft) bool {
	w.errors = ValidateStep(d, w.step)
	if !w.errors.Empty() {
		return false
	}
	if !w.IsLast() {
		w.step = Steps[w.step.index()+1]
	}
	return true
}

func (w *Wizard) Back() {
	if i := w.step.index(); i > 0 {
		w.step = Steps[i-1]
	}
	w.errors = FieldErrors{}
}

func (w *Wizard) Submit(d Draft) bool {
	for _, step := range Steps {
		if errs := ValidateStep(d, step); !errs.Empty() {
			w.step = step
			w.errors = errs
			return false
		}
	}
	w.errors = FieldErrors{}
	return true
}

// Reject records a server-side error against a field and moves to the step owning it.
func (w *Wizard) Reject(step Step, field, msg string) {
	w.step = step
	w.errors = FieldErrors{field: msg}
}
