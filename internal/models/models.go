// Package models defines the content entities stored in DynamoDB and the
// typed request payloads accepted by the API.
package models

// Article statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Event types.
const (
	EventMeeting  = "meeting"
	EventSpecial  = "special"
	EventWorkshop = "workshop"
)

// Subscriber statuses.
const (
	SubscriberActive       = "active"
	SubscriberUnsubscribed = "unsubscribed"
)

// Article is a blog post. Slug is unique across articles; PublishedAt is
// set on the first draft-to-published transition and never changes after.
type Article struct {
	ID            string `json:"id" dynamodbav:"id"`
	Slug          string `json:"slug" dynamodbav:"slug"`
	Title         string `json:"title" dynamodbav:"title"`
	Excerpt       string `json:"excerpt" dynamodbav:"excerpt"`
	Content       string `json:"content" dynamodbav:"content"`
	Author        string `json:"author" dynamodbav:"author"`
	// omitempty keeps drafts out of the status-publishedAt index: an
	// empty string is not a legal index key attribute value.
	PublishedAt   string `json:"publishedAt" dynamodbav:"publishedAt,omitempty"`
	Status        string `json:"status" dynamodbav:"status"`
	FeaturedImage string `json:"featuredImage,omitempty" dynamodbav:"featuredImage,omitempty"`
	Category      string `json:"category" dynamodbav:"category"`
	ReadTime      string `json:"readTime" dynamodbav:"readTime"`
}

// Event is a single occurrence; there is no recurrence model.
type Event struct {
	ID              string `json:"id" dynamodbav:"id"`
	Title           string `json:"title" dynamodbav:"title"`
	Description     string `json:"description" dynamodbav:"description"`
	Date            string `json:"date" dynamodbav:"date"`
	Time            string `json:"time" dynamodbav:"time"`
	Location        string `json:"location" dynamodbav:"location"`
	Type            string `json:"type" dynamodbav:"type"`
	Featured        bool   `json:"featured,omitempty" dynamodbav:"featured,omitempty"`
	Image           string `json:"image,omitempty" dynamodbav:"image,omitempty"`
	RegistrationURL string `json:"registrationUrl,omitempty" dynamodbav:"registrationUrl,omitempty"`
}

// GalleryImage pairs a stored object with its record. Category forms part
// of the partition key, so it is required for deletes.
type GalleryImage struct {
	ID          string `json:"id" dynamodbav:"id"`
	Category    string `json:"category" dynamodbav:"category"`
	Title       string `json:"title" dynamodbav:"title"`
	Description string `json:"description" dynamodbav:"description"`
	S3Key       string `json:"s3Key" dynamodbav:"s3Key"`
	UploadedAt  string `json:"uploadedAt" dynamodbav:"uploadedAt"`
	UploadedBy  string `json:"uploadedBy" dynamodbav:"uploadedBy"`
}

// TeamMember carries a dense integer Order used for manual list ordering.
type TeamMember struct {
	ID          string `json:"id" dynamodbav:"id"`
	Name        string `json:"name" dynamodbav:"name"`
	Role        string `json:"role" dynamodbav:"role"`
	Description string `json:"description" dynamodbav:"description"`
	Image       string `json:"image,omitempty" dynamodbav:"image,omitempty"`
	Order       int    `json:"order" dynamodbav:"order"`
	Active      bool   `json:"active" dynamodbav:"active"`
}

// Testimonial uses the same ordering model as TeamMember.
type Testimonial struct {
	ID     string `json:"id" dynamodbav:"id"`
	Quote  string `json:"quote" dynamodbav:"quote"`
	Author string `json:"author" dynamodbav:"author"`
	Role   string `json:"role" dynamodbav:"role"`
	Rating int    `json:"rating" dynamodbav:"rating"`
	Active bool   `json:"active" dynamodbav:"active"`
	Order  int    `json:"order" dynamodbav:"order"`
}

// Subscriber is keyed directly by email.
type Subscriber struct {
	Email        string `json:"email" dynamodbav:"email"`
	SubscribedAt string `json:"subscribedAt" dynamodbav:"subscribedAt"`
	Status       string `json:"status" dynamodbav:"status"`
	Source       string `json:"source" dynamodbav:"source"`
}

// SiteSettings is a singleton record; updates are read-merge-write.
type SiteSettings struct {
	MeetingDay      string `json:"meetingDay" dynamodbav:"meetingDay"`
	MeetingTime     string `json:"meetingTime" dynamodbav:"meetingTime"`
	MeetingLocation string `json:"meetingLocation" dynamodbav:"meetingLocation"`
	NextMeetingDate string `json:"nextMeetingDate" dynamodbav:"nextMeetingDate"`
	ContactEmail    string `json:"contactEmail" dynamodbav:"contactEmail"`
	ClubURL         string `json:"clubUrl" dynamodbav:"clubUrl"`
	YoutubeVideoID  string `json:"youtubeVideoId" dynamodbav:"youtubeVideoId"`
}

// PageContent holds per-page editable content blocks.
type PageContent struct {
	PageID       string            `json:"pageId" dynamodbav:"pageId"`
	Title        string            `json:"title" dynamodbav:"title"`
	Content      map[string]string `json:"content" dynamodbav:"content"`
	LastModified string            `json:"lastModified" dynamodbav:"lastModified"`
	ModifiedBy   string            `json:"modifiedBy" dynamodbav:"modifiedBy"`
}

// User mirrors the identity provider's view of an account; nothing about
// users is persisted locally.
type User struct {
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Name      string   `json:"name,omitempty"`
	Status    string   `json:"status"`
	Enabled   bool     `json:"enabled"`
	CreatedAt string   `json:"createdAt,omitempty"`
	Groups    []string `json:"groups"`
	IsAdmin   bool     `json:"isAdmin"`
}
