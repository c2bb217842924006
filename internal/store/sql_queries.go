package store

const (
	createUser = `INSERT INTO users (email, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, name, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, name, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	createCategory = `INSERT INTO categories (id, name, description)
    VALUES ($1, $2, $3)
    RETURNING id, name, description, created_at, updated_at;`

	getAllCategories = `SELECT id, name, description, created_at, updated_at
    FROM categories
    ORDER BY name;`

	getCategoryByID = `SELECT id, name, description, created_at, updated_at
    FROM categories
    WHERE id = $1;`

	updateCategory = `UPDATE categories
    SET name = $2, description = $3, updated_at = NOW()
    WHERE id = $1
    RETURNING id, name, description, created_at, updated_at;`

	deleteCategory = `DELETE FROM categories WHERE id = $1;`

	promptColumns = `id, title, content, description, tags, variables, user_id, author_name,
    category_id, is_public, votes, voters, comments, created_at, updated_at`

	createPrompt = `INSERT INTO prompts
    (id, title, content, description, tags, variables, user_id, author_name, category_id, is_public)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING ` + promptColumns + `;`

	getPromptByID = `SELECT ` + promptColumns + ` FROM prompts WHERE id = $1;`

	updatePrompt = `UPDATE prompts
    SET title = $2, content = $3, description = $4, tags = $5, variables = $6,
        category_id = $7, is_public = $8, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + promptColumns + `;`

	deletePrompt = `DELETE FROM prompts WHERE id = $1;`

	// The engagement mutations are single statements so that concurrent
	// votes or comments on the same prompt can never lose updates.
	incrementVotes = `UPDATE prompts
    SET votes = votes + 1, updated_at = NOW()
    WHERE id = $1 AND is_public
    RETURNING votes;`

	appendComment = `UPDATE prompts
    SET comments = comments || $2::jsonb, updated_at = NOW()
    WHERE id = $1 AND is_public;`
)
