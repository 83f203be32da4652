package models

type Post struct {
	Base      `bson:",inline"`
	Title     string `bson:"title" json:"title"`
	Content   string `bson:"content" json:"content"`
	Image     string `bson:"image,omitempty" json:"image,omitempty"`
	Published bool   `bson:"published" json:"published"`
}

func (p Post) WithMeta(b Base) Post {
	p.Base = b
	return p
}

type PostPatch struct {
	Title     *string
	Content   *string
	Image     *string
	Published *bool
}

func (p PostPatch) Apply(post *Post) {
	setString(&post.Title, p.Title)
	setString(&post.Content, p.Content)
	setString(&post.Image, p.Image)
	if p.Published != nil {
		post.Published = *p.Published
	}
}
