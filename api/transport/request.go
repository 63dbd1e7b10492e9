package transport

type TaskRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"due_date"`
	CategoryID  string   `json:"category_id"`
	Labels      []string `json:"labels"`
	Status      string   `json:"status"`
	Order       int      `json:"order"`
}

type ReorderEntry struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

type ReorderRequest struct {
	TaskOrders []ReorderEntry `json:"task_orders"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type LabelRequest struct {
	Name string `json:"name"`
}

type ReminderRequest struct {
	TaskID   string `json:"task_id"`
	RemindAt string `json:"remind_at"`
	Type     string `json:"reminder_type"`
	Repeat   string `json:"repeat"`
}

// ReminderUpdateRequest uses pointers so omitted fields keep stored values.
type ReminderUpdateRequest struct {
	RemindAt *string `json:"remind_at"`
	Type     *string `json:"reminder_type"`
	Repeat   *string `json:"repeat"`
	IsActive *bool   `json:"is_active"`
}

type ProfileUpdateRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

type AuthLoginRequest struct {
	UserID string `json:"user_id"`
	TTL    int    `json:"ttl_seconds"`
}

type RefreshRequest struct {
	SessionID string `json:"session_id"`
	TTL       int    `json:"ttl_seconds"`
}
