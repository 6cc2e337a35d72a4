package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const indexPageContent = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Store Service API</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; background-color: #f9f9f9; color: #333; }
        h1, h2 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        ul { list-style: none; padding-left: 0; }
        li { margin-bottom: 15px; background-color: #fff; padding: 10px; border: 1px solid #eee; border-radius: 4px; }
        code { background-color: #e8e8e8; padding: 3px 6px; border-radius: 3px; font-family: Consolas, Monaco, monospace; }
        .method { font-weight: bold; display: inline-block; width: 60px; }
        .method-post { color: #49cc90; }
        .method-get { color: #61affe; }
        .method-put { color: #fca130; }
        .method-delete { color: #f93e3e; }
    </style>
</head>
<body>
    <h1>Store Service API Endpoints</h1>

    <h2>Stores</h2>
    <ul>
        <li><span class="method method-post">POST</span> <code>/register</code> - Register a store. JSON body: <code>{"store_name", "store_type", "store_description", "contact_number", "email", "password", "latitude", "longitude"}</code></li>
        <li><span class="method method-post">POST</span> <code>/login</code> - Check store credentials. JSON body: <code>{"email", "password"}</code></li>
        <li><span class="method method-get">GET</span> <code>/store/{id}</code> - Store details (password never returned).</li>
        <li><span class="method method-put">PUT</span> <code>/store/{id}</code> - Update any of the descriptive fields.</li>
        <li><span class="method method-delete">DELETE</span> <code>/store/{id}</code> - Remove a store and its products.</li>
    </ul>

    <h2>Products</h2>
    <ul>
        <li><span class="method method-post">POST</span> <code>/store/{id}/products</code> (or <code>/store/{id}/add-product</code>) - JSON body: <code>{"name": "string", "price": float64, "stock": bool}</code>; <code>stock</code> defaults to true.</li>
        <li><span class="method method-get">GET</span> <code>/store/{id}/products</code> - List a store's products.</li>
        <li><span class="method method-delete">DELETE</span> <code>/store/{id}/products/{productId}</code> - Remove a product.</li>
    </ul>

    <h2>Logs</h2>
    <ul>
        <li><span class="method method-post">POST</span> <code>/log</code> - JSON body: <code>{"level", "message", "user_email", "endpoint"}</code></li>
        <li><span class="method method-get">GET</span> <code><a href="/logs">/logs</a></code> - Most recent entries. Query parameter <code>limit</code> (default 50).</li>
    </ul>

    <h2>Sentiment</h2>
    <ul>
        <li><span class="method method-post">POST</span> <code>/predict</code> - JSON body: <code>{"text": "string"}</code>. Returns the prediction, running counts and the five most recent reviews.</li>
        <li><span class="method method-get">GET</span> <code><a href="/predict/stats">/predict/stats</a></code> - Current tally of this instance.</li>
    </ul>

    <h2>Operations</h2>
    <ul>
        <li><span class="method method-get">GET</span> <code><a href="/health">/health</a></code> - Database connectivity.</li>
        <li><span class="method method-get">GET</span> <code><a href="/metrics">/metrics</a></code> - Prometheus metrics.</li>
    </ul>
</body>
</html>
`

func serveIndexPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPageContent))
}
