package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Posts handles GET /api/v1/posts
// @Summary List published posts
// @Description Published posts ordered by publish date, newest first
// @Tags posts
// @Produce json
// @Param search query string false "Case-sensitive substring of title or content"
// @Param categorySlug query string false "Category slug"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.PostPage
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/posts [get]
func (h *Handler) Posts(c echo.Context) error {
	var req PostsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	filter, err := req.filter()
	if err != nil {
		return h.handleBlogError(c, err)
	}

	page, err := h.manager.PublishedPosts(c.Request().Context(), filter)
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, NewPostPage(page))
}

// PostBySlug handles GET /api/v1/posts/slug/:slug
// @Summary Get post by slug
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} rest.Post
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/posts/slug/{slug} [get]
func (h *Handler) PostBySlug(c echo.Context) error {
	post, err := h.manager.PostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// PostByID handles GET /api/v1/posts/:id and GET /api/v1/admin/posts/:id
// @Summary Get post by ID
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} rest.Post
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/posts/{id} [get]
func (h *Handler) PostByID(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid post id")
	}

	post, err := h.manager.PostByID(c.Request().Context(), id)
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// RelatedPosts handles GET /api/v1/posts/:id/related
// @Summary Get related posts
// @Description Published posts of the same category, excluding the post itself
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Param categoryId query int true "Category ID"
// @Param limit query int false "Maximum number of posts (default: 3)"
// @Success 200 {array} rest.Post
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/posts/{id}/related [get]
func (h *Handler) RelatedPosts(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid post id")
	}

	var req RelatedRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	posts, err := h.manager.RelatedPosts(c.Request().Context(), id, req.CategoryID, req.Limit)
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, NewPosts(posts))
}

// CreatePost handles POST /api/v1/posts
// @Summary Create post
// @Description The caller becomes the author. Status defaults to Draft.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body rest.CreatePostRequest true "Post"
// @Success 201 {object} rest.Post
// @Failure 400,401,403,409,500 {object} map[string]string
// @Router /api/v1/posts [post]
func (h *Handler) CreatePost(c echo.Context) error {
	caller, ok := identityFrom(c)
	if !ok {
		return h.handleError(c, nil, http.StatusUnauthorized, "unauthorized")
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	in, err := req.input()
	if err != nil {
		return h.handleBlogError(c, err)
	}

	post, err := h.manager.CreatePost(c.Request().Context(), caller.UserID, in)
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusCreated, NewPost(*post))
}

// UpdatePost handles PUT /api/v1/posts/:id
// @Summary Update post
// @Description Partial update, only supplied fields change. Allowed for the author and admins.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param post body rest.UpdatePostRequest true "Fields to change"
// @Success 200 {object} rest.Post
// @Failure 400,401,403,404,409,500 {object} map[string]string
// @Router /api/v1/posts/{id} [put]
func (h *Handler) UpdatePost(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid post id")
	}

	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	in, err := req.input()
	if err != nil {
		return h.handleBlogError(c, err)
	}

	if ok, err := h.canChange(c, id); !ok {
		return err
	}

	post, err := h.manager.UpdatePost(c.Request().Context(), id, in)
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}

// DeletePost handles DELETE /api/v1/posts/:id
// @Summary Delete post
// @Description Allowed for the author and admins.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/posts/{id} [delete]
func (h *Handler) DeletePost(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid post id")
	}

	if ok, err := h.canChange(c, id); !ok {
		return err
	}

	if err := h.manager.DeletePost(c.Request().Context(), id); err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "post deleted"})
}

// UserPosts handles GET /api/v1/user/posts
// @Summary List own posts
// @Description Posts of the caller in any status, newest created first
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-sensitive substring of title or content"
// @Param status query string false "Draft or Published"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.PostPage
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/user/posts [get]
func (h *Handler) UserPosts(c echo.Context) error {
	caller, ok := identityFrom(c)
	if !ok {
		return h.handleError(c, nil, http.StatusUnauthorized, "unauthorized")
	}

	var req PostsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	filter, err := req.filter()
	if err != nil {
		return h.handleBlogError(c, err)
	}

	page, err := h.manager.AuthorPosts(c.Request().Context(), caller.UserID, filter)
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, NewPostPage(page))
}

// AdminPosts handles GET /api/v1/admin/posts
// @Summary List all posts
// @Description Posts in any status, newest created first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-sensitive substring of title or content"
// @Param categoryId query int false "Category ID"
// @Param status query string false "Draft or Published"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.PostPage
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/posts [get]
func (h *Handler) AdminPosts(c echo.Context) error {
	var req PostsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	filter, err := req.filter()
	if err != nil {
		return h.handleBlogError(c, err)
	}

	page, err := h.manager.AllPosts(c.Request().Context(), filter)
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, NewPostPage(page))
}

// canChange reports whether the caller may modify the post, the author and admins may.
// When it reports false the response has already been written.
func (h *Handler) canChange(c echo.Context, id uuid.UUID) (bool, error) {
	caller, ok := identityFrom(c)
	if !ok {
		return false, h.handleError(c, nil, http.StatusUnauthorized, "unauthorized")
	}
	if caller.IsAdmin() {
		return true, nil
	}

	post, err := h.manager.PostByID(c.Request().Context(), id)
	if err != nil {
		return false, h.handleBlogError(c, err)
	}
	if post.AuthorID != caller.UserID {
		return false, h.handleError(c, nil, http.StatusForbidden, "only the author or an admin may change this post")
	}

	return true, nil
}
