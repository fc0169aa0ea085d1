package validation

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTitle validates a task title for creation. Updates never call this:
// a blank title on update means "leave unchanged".
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(title)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidTitleLength(trimmed) {
		validationError.AddInvalidLengthError("title", trimmed, 1, 255)
	}

	if tv.validator.HasControlCharacters(trimmed) {
		validationError.AddInvalidCharacterError("title", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateOwnerID validates an owner (user) ID
func (tv *TaskValidator) ValidateOwnerID(id int64) error {
	if !tv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("owner_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTitle trims the title and validates it, returning the cleaned value
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(title), nil
}

// UserValidator provides validation for User-related operations
type UserValidator struct {
	validator *Validator
}

// NewUserValidator creates a new user validator
func NewUserValidator() *UserValidator {
	return &UserValidator{
		validator: NewValidator(),
	}
}

// ValidateUserName validates a user name for resolution or creation
func (uv *UserValidator) ValidateUserName(name string) error {
	validationError := NewValidationError()

	trimmed := uv.validator.TrimAndValidateString(name)

	if !uv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("user_name")
		return validationError
	}

	if uv.validator.HasControlCharacters(trimmed) {
		validationError.AddInvalidCharacterError("user_name", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
