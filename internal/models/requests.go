package models

// Request payloads are explicit, schema-validated types; handlers never
// merge untyped maps into records.

type CreateArticleRequest struct {
	Title         string `json:"title" validate:"required"`
	Slug          string `json:"slug" validate:"required"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content" validate:"required"`
	Author        string `json:"author"`
	Status        string `json:"status" validate:"omitempty,oneof=draft published"`
	FeaturedImage string `json:"featuredImage"`
	Category      string `json:"category"`
	ReadTime      string `json:"readTime"`
}

// UpdateArticleRequest is a partial update; nil pointers leave the stored
// value untouched.
type UpdateArticleRequest struct {
	Title         *string `json:"title"`
	Slug          *string `json:"slug"`
	Excerpt       *string `json:"excerpt"`
	Content       *string `json:"content"`
	Author        *string `json:"author"`
	Status        *string `json:"status" validate:"omitempty,oneof=draft published"`
	FeaturedImage *string `json:"featuredImage"`
	Category      *string `json:"category"`
	ReadTime      *string `json:"readTime"`
}

type CreateEventRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description"`
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
	Location        string `json:"location"`
	Type            string `json:"type" validate:"omitempty,oneof=meeting special workshop"`
	Featured        bool   `json:"featured"`
	Image           string `json:"image"`
	RegistrationURL string `json:"registrationUrl"`
}

type UpdateEventRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Date            *string `json:"date"`
	Time            *string `json:"time"`
	Location        *string `json:"location"`
	Type            *string `json:"type" validate:"omitempty,oneof=meeting special workshop"`
	Featured        *bool   `json:"featured"`
	Image           *string `json:"image"`
	RegistrationURL *string `json:"registrationUrl"`
}

type CreateGalleryImageRequest struct {
	Category    string `json:"category" validate:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	S3Key       string `json:"s3Key" validate:"required"`
}

type CreateTeamMemberRequest struct {
	Name        string `json:"name" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Active      *bool  `json:"active"`
}

type UpdateTeamMemberRequest struct {
	Name        *string `json:"name"`
	Role        *string `json:"role"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Active      *bool   `json:"active"`
}

type CreateTestimonialRequest struct {
	Quote  string `json:"quote" validate:"required"`
	Author string `json:"author" validate:"required"`
	Role   string `json:"role"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Active *bool  `json:"active"`
}

type UpdateTestimonialRequest struct {
	Quote  *string `json:"quote"`
	Author *string `json:"author"`
	Role   *string `json:"role"`
	Rating *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Active *bool   `json:"active"`
}

// ReorderRequest rewrites order for every listed id, first to last.
type ReorderRequest struct {
	OrderedIDs []string `json:"orderedIds" validate:"required,min=1"`
}

type UpdateSettingsRequest struct {
	MeetingDay      *string `json:"meetingDay"`
	MeetingTime     *string `json:"meetingTime"`
	MeetingLocation *string `json:"meetingLocation"`
	NextMeetingDate *string `json:"nextMeetingDate"`
	ContactEmail    *string `json:"contactEmail"`
	ClubURL         *string `json:"clubUrl"`
	YoutubeVideoID  *string `json:"youtubeVideoId"`
}

type UpdatePageContentRequest struct {
	Title   *string           `json:"title"`
	Content map[string]string `json:"content"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

type SubscribeRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Source string `json:"source"`
}

type CreateUserRequest struct {
	Email             string `json:"email" validate:"required,email"`
	Name              string `json:"name"`
	TemporaryPassword string `json:"temporaryPassword" validate:"required,min=8"`
	IsAdmin           bool   `json:"isAdmin"`
}

// UpdateUserRequest applies only the fields that are present.
type UpdateUserRequest struct {
	IsAdmin     *bool  `json:"isAdmin"`
	Enabled     *bool  `json:"enabled"`
	NewPassword string `json:"newPassword" validate:"omitempty,min=8"`
}
