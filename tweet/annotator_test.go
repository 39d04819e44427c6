package tweet_test

import (
	"strings"
	"testing"

	"github.com/FreeFeed/tweetformat/tweet"
	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotate(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(
		`Hey <a href="http://twitter.com/darinwilson" class="tf-mention">@darinwilson</a> check this out <a href="http://bit.ly/2Aiqdv" class="tf-link">bit.ly/2Aiqdv</a> <span class="tf-hashtag">#js</span>`,
		tweet.Annotate("Hey @darinwilson check this out http://bit.ly/2Aiqdv #js", ""),
	)

	assert.Equal(
		`Just a <span class="myprefix-hashtag">#hashtag</span>`,
		tweet.Annotate("Just a #hashtag", "myprefix"),
	)

	assert.Equal("no special tokens here", tweet.Annotate("no special tokens here", ""))
	assert.Equal("", tweet.Annotate("", ""))

	assert.Equal(
		`<span class="tf-hashtag">#js</span> and <span class="tf-hashtag">#js</span> again`,
		tweet.Annotate("#js and #js again", ""),
	)
}

func TestAnnotateDefaultPrefix(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{
		"",
		"plain",
		"@one #two https://three.org/four",
		"#a #b #c @d",
	} {
		assert.Equal(tweet.Annotate(text, "tf"), tweet.Annotate(text, ""), text)
		assert.Equal(tweet.Annotate(text, "tf"), tweet.New().Annotate(text), text)
	}
	assert.Equal("tf", tweet.New().Prefix())
	assert.Equal("tf", tweet.New(tweet.WithPrefix("")).Prefix())
	assert.Equal("x", tweet.New(tweet.WithPrefix("x")).Prefix())
}

func TestAnnotateLinks(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(
		`<a href="https://go.dev" class="tf-link">go.dev</a>`,
		tweet.Annotate("https://go.dev", ""),
	)

	assert.Equal(
		`open <a href="http://localhost:8080/path/to_file.html?x=1&y=2" class="tf-link">localhost:8080/path/to_file.html?x=1&y=2</a> now`,
		tweet.Annotate("open http://localhost:8080/path/to_file.html?x=1&y=2 now", ""),
	)

	// Scheme is case-sensitive
	assert.Equal("HTTP://EXAMPLE.COM", tweet.Annotate("HTTP://EXAMPLE.COM", ""))

	// Path stops at '@', the rest is a mention
	assert.Equal(
		`<a href="http://example.com/" class="tf-link">example.com/</a><a href="http://twitter.com/bob" class="tf-mention">@bob</a>`,
		tweet.Annotate("http://example.com/@bob", ""),
	)
}

func TestAnnotateTokensInsideLinks(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(
		`see <a href="http://example.com/search?q=#go" class="tf-link">example.com/search?q=#go</a>`,
		tweet.Annotate("see http://example.com/search?q=#go", ""),
	)

	assert.Equal(
		`<a href="http://x.com/?u=@bob" class="tf-link">x.com/?u=@bob</a>`,
		tweet.Annotate("http://x.com/?u=@bob", ""),
	)

	// Tokens touching a link are still found in the text around it
	assert.Equal(
		`<a href="http://twitter.com/bob" class="tf-mention">@bob</a><a href="http://x.org" class="tf-link">x.org</a>`,
		tweet.Annotate("@bobhttp://x.org", ""),
	)
	assert.Equal(
		tweet.New(tweet.Legacy()).Annotate("@bobhttp://x.org"),
		tweet.Annotate("@bobhttp://x.org", ""),
	)
	assert.Equal(
		`<span class="tf-hashtag">#go</span><a href="https://go.dev" class="tf-link">go.dev</a> <a href="http://twitter.com/me" class="tf-mention">@me</a><span class="tf-hashtag">#x</span>`,
		tweet.Annotate("#gohttps://go.dev @me#x", ""),
	)
}

func TestAnnotateMentions(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(
		`hi <a href="http://twitter.com/user_1" class="tf-mention">@user_1</a>!`,
		tweet.Annotate("hi @user_1!", ""),
	)

	// A bare '@' is not followed by a word boundary, so it is left alone
	assert.Equal("see you @ 5", tweet.Annotate("see you @ 5", ""))
	assert.Equal("trailing @", tweet.Annotate("trailing @", ""))

	// The domain part of an e-mail address looks like a mention
	assert.Equal(
		`mail bob<a href="http://twitter.com/example" class="tf-mention">@example</a>.com`,
		tweet.Annotate("mail bob@example.com", ""),
	)

	assert.Equal(
		`<a href="https://freefeed.net/alice" class="tf-mention">@alice</a>`,
		tweet.New(tweet.WithProfileURL("https://freefeed.net/")).Annotate("@alice"),
	)
}

func TestAnnotateHashtagOnly(t *testing.T) {
	assert := assert.New(t)

	text := "nothing but a #tag here"
	out := tweet.Annotate(text, "")

	assert.Equal(`nothing but a <span class="tf-hashtag">#tag</span> here`, out)
	assert.Equal("nothing but a #tag here", strings.NewReplacer(`<span class="tf-hashtag">`, "", `</span>`, "").Replace(out))
	assert.Equal("#", tweet.Annotate("#", ""))
}

func TestAnnotateMarkup(t *testing.T) {
	text := "Hey @darinwilson, @golang check https://bit.ly/2Aiqdv and http://go.dev/doc #js #go"
	out := tweet.New(tweet.WithPrefix("p")).Annotate(text)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	var links []string
	doc.Find("a.p-link").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://"))
		assert.Equal(t, href[strings.Index(href, "://")+3:], s.Text())
		links = append(links, href)
	})
	assert.Equal(t, []string{"https://bit.ly/2Aiqdv", "http://go.dev/doc"}, links)

	var mentions []string
	doc.Find("a.p-mention").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		assert.Equal(t, "http://twitter.com/"+strings.TrimPrefix(s.Text(), "@"), href)
		mentions = append(mentions, s.Text())
	})
	assert.Equal(t, []string{"@darinwilson", "@golang"}, mentions)

	var hashtags []string
	doc.Find("span.p-hashtag").Each(func(_ int, s *goquery.Selection) {
		hashtags = append(hashtags, s.Text())
	})
	assert.Equal(t, []string{"#js", "#go"}, hashtags)

	assert.Equal(t, strings.NewReplacer("https://", "", "http://", "").Replace(text), doc.Text())
}

func TestLegacy(t *testing.T) {
	assert := assert.New(t)

	legacy := tweet.New(tweet.Legacy())

	assert.Equal(
		`Hey <a href="http://twitter.com/darinwilson" class="tf-mention">@darinwilson</a> check this out <a href="http://bit.ly/2Aiqdv" class="tf-link">bit.ly/2Aiqdv</a> <span class="tf-hashtag">#js</span>`,
		legacy.Annotate("Hey @darinwilson check this out http://bit.ly/2Aiqdv #js"),
	)

	assert.Equal(
		`Just a <span class="myprefix-hashtag">#hashtag</span>`,
		tweet.New(tweet.Legacy(), tweet.WithPrefix("myprefix")).Annotate("Just a #hashtag"),
	)

	assert.Equal("", legacy.Annotate(""))

	// The second "#js" replaces the first occurrence, which is already wrapped
	assert.Equal(
		`<span class="tf-hashtag"><span class="tf-hashtag">#js</span></span> and #js again`,
		legacy.Annotate("#js and #js again"),
	)

	// Tokens inside a link get wrapped inside its href
	assert.Contains(
		legacy.Annotate("see http://example.com/search?q=#go"),
		`href="http://example.com/search?q=<span class="tf-hashtag">`,
	)
	assert.Contains(
		legacy.Annotate("http://x.com/?u=@bob"),
		`href="http://x.com/?u=<a href="http://twitter.com/bob" class="tf-mention">`,
	)
}
